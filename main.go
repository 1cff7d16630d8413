package main

import (
	"github.com/Upkraft/Upkraft-Backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
