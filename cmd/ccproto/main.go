package main

import (
	"shanhu.io/ccproto/ccprotobin"
)

func main() { ccprotobin.Main() }
