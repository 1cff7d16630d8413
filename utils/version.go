package utils

// REVISION is surfaced in every API response envelope so mobile/web
// clients can pin behavior against a backend release.
const REVISION = "0.3.1"
