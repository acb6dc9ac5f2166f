// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package robdd

// _DEBUG unlocks statistics about the unique table and external references,
// and debug-level logging of garbage collections.
const _DEBUG bool = true

// _LOGLEVEL above 1 dumps the node table before and after each GC.
const _LOGLEVEL int = 2
