//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/MattSimmons1/unit/parser"
	"github.com/MattSimmons1/unit/system"
)

func main() {
	fmt.Println("Hello wasm")
	sys := system.Default()

	js.Global().Get("wasm").Set("unit", js.FuncOf(func(this js.Value, p []js.Value) interface{} {
		u, err := parser.Parse(sys, p[0].String(), parser.UTF8)
		if err != nil {
			return js.ValueOf(map[string]interface{}{"error": err.Error()})
		}
		return js.ValueOf(map[string]interface{}{"unit": system.Format(u)})
	}))

	select {} // don't exit
}
