package main

import "cm-madeira/go_backend/internal/app"

func main() {
	app.Run()
}
