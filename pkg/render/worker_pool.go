package render

import (
	"runtime"
	"sync"

	"github.com/rlowe/pathtracer/pkg/camera"
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/integrator"
)

// rowTask is one scanline of the final image, the unit of work handed to
// a worker. Rows (not pixel-squares) keep the partition trivial while
// still giving every worker plenty of independent columns to chew on.
type rowTask struct {
	row int
}

// Options configures a Render call.
type Options struct {
	NumWorkers int // 0 = runtime.NumCPU()
	Logger     core.Logger
}

// Render drives cam across every pixel of its image, tracing SqrtSPP()^2
// stratified paths per pixel (SamplesPerPixel rounded down to a perfect
// square) against world/lights, and returns the
// accumulated framebuffer. Work is partitioned by row across NumWorkers
// goroutines; scene data is read-only after construction so no
// synchronization is needed beyond the task queue (spec §5).
func Render(cam *camera.Camera, world integrator.World, lights integrator.Lights, opts Options) *Framebuffer {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fb := NewFramebuffer(cam.ImageWidth, cam.ImageHeight)

	tasks := make(chan rowTask, cam.ImageHeight)
	for j := 0; j < cam.ImageHeight; j++ {
		tasks <- rowTask{row: j}
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			sampler := core.NewSampler(int64(workerID) + 1)
			for task := range tasks {
				renderRow(fb, cam, world, lights, sampler, task.row)
			}
		}(w)
	}
	wg.Wait()

	if opts.Logger != nil {
		opts.Logger.Printf("rendered %dx%d at %d spp using %d workers", cam.ImageWidth, cam.ImageHeight, cam.SamplesPerPixel, numWorkers)
	}

	return fb
}

func renderRow(fb *Framebuffer, cam *camera.Camera, world integrator.World, lights integrator.Lights, sampler *core.Sampler, j int) {
	sqrtSPP := cam.SqrtSPP()

	for i := 0; i < cam.ImageWidth; i++ {
		sum := core.Vec3{}
		for sj := 0; sj < sqrtSPP; sj++ {
			for si := 0; si < sqrtSPP; si++ {
				r := cam.GetRay(sampler, i, j, si, sj)
				sum = sum.Add(integrator.Trace(sampler, world, lights, cam.Background, r, cam.MaxDepth))
			}
		}
		fb.Set(i, j, sum)
	}
}
