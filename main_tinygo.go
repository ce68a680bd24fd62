//go:build tinygo

package main

import (
	"zxhost/app"
	"zxhost/hal"
)

func main() {
	app.Run(hal.New())
}

