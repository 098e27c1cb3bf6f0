//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"pointsheet/internal/pointsheet"
)

// openCLSheetGenerator computes the point sheet buffers on an OpenCL device.
// Results match pointsheet.Generate up to single-precision rounding.
type openCLSheetGenerator struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	deviceName string
}

const sheetKernelSource = `__kernel void point_sheet(
    const int width,
    const int depth,
    const float compactness,
    const float amplitude,
    __global float* positions,
    __global float* colors)
{
    int idx = get_global_id(0);
    if (idx >= width * depth) {
        return;
    }
    int i = idx / depth;
    int k = idx % depth;
    float x = (float)i / compactness;
    float z = (float)k / compactness;
    float y = sin(x / 5.0f) + cos(z / 5.0f);
    int base = idx * 3;
    positions[base] = x - (float)width / 4.0f;
    positions[base + 1] = y * amplitude;
    positions[base + 2] = z - (float)depth / 4.0f;

    int band = (int)floor((float)i / ((float)width / 3.0f));
    if (band < 0) {
        band = 0;
    } else if (band > 2) {
        band = 2;
    }
    colors[base] = band == 0 ? 1.0f : 0.0f;
    colors[base + 1] = band == 1 ? 1.0f : 0.0f;
    colors[base + 2] = band == 2 ? 1.0f : 0.0f;
}`

func newOpenCLSheetGenerator() (*openCLSheetGenerator, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, deviceType := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(deviceType)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
		if device != nil {
			break
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{sheetKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("point_sheet")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return &openCLSheetGenerator{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		deviceName: device.Name(),
	}, nil
}

// Generate builds the sheet for p on the device. Buffers are allocated per
// call and released before returning.
func (s *openCLSheetGenerator) Generate(p pointsheet.Params) (*pointsheet.Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Points()
	byteSize := 3 * n * int(unsafe.Sizeof(float32(0)))
	posBuf, err := s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize)
	if err != nil {
		return nil, fmt.Errorf("allocating position buffer: %w", err)
	}
	defer posBuf.Release()
	colBuf, err := s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize)
	if err != nil {
		return nil, fmt.Errorf("allocating color buffer: %w", err)
	}
	defer colBuf.Release()

	if err := s.kernel.SetArgs(
		int32(p.Width),
		int32(p.Depth),
		float32(p.Compactness),
		float32(p.WaveAmplitude),
		posBuf,
		colBuf,
	); err != nil {
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n}, nil, nil); err != nil {
		return nil, fmt.Errorf("enqueueing kernel: %w", err)
	}
	positions := make([]float32, 3*n)
	colors := make([]float32, 3*n)
	if _, err := s.queue.EnqueueReadBufferFloat32(posBuf, true, 0, positions, nil); err != nil {
		return nil, fmt.Errorf("reading position buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(colBuf, true, 0, colors, nil); err != nil {
		return nil, fmt.Errorf("reading color buffer: %w", err)
	}
	return pointsheet.FromBuffers(p, positions, colors)
}

func (s *openCLSheetGenerator) Close() {
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLSheetGenerator) DeviceName() string {
	return s.deviceName
}
