//go:build !opencl

package main

import (
	"errors"

	"pointsheet/internal/pointsheet"
)

type openCLSheetGenerator struct{}

func newOpenCLSheetGenerator() (*openCLSheetGenerator, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLSheetGenerator) Generate(pointsheet.Params) (*pointsheet.Geometry, error) {
	return nil, errors.New("OpenCL generator unavailable")
}

func (s *openCLSheetGenerator) Close() {}

func (s *openCLSheetGenerator) DeviceName() string { return "" }
