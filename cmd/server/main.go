package main

import "sipeka/internal/app/server"

func main() {
	server.Run()
}
