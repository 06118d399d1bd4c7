package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/encoders"
	"github.com/reusee/tapecode/storages"
	"github.com/reusee/tapecode/tapes"
)

type Module struct {
	dscope.Module
	Encoders encoders.Module
	Tapes    tapes.Module
	Storages storages.Module
}
