// Package ilda implements the ILDA image data transfer format: the binary
// encoding of laser frames written by the export pipeline and the symmetric
// decoder used for preview and validation.
//
// Supported block formats: 0 (3D indexed), 1 (2D indexed), 2 (color palette),
// 4 (3D true color), 5 (2D true color). All multi-byte fields are big-endian.
package ilda
