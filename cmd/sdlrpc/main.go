package main

import (
	_ "github.com/sdlgo/sdlrpc/formats/cbor"
	"github.com/sdlgo/sdlrpc/sdlcli"
)

func main() {
	sdlcli.New().Run()
}
