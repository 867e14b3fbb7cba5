package shaders

import (
	_ "embed"
)

//go:embed color.vert
var ColorVertGLSL string

//go:embed color.frag
var ColorFragGLSL string

//go:embed normal.vert
var NormalVertGLSL string

//go:embed normal.frag
var NormalFragGLSL string
