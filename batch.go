package geometry

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// TransformPoints applies the location to every point in place, splitting the
// slice into contiguous chunks across workersCount goroutines. Each worker
// owns its chunk, so no synchronization beyond the final wait is needed.
func TransformPoints(l Location, points []mgl64.Vec3, workersCount int) {
	workersCount = max(DEFAULT_WORKERS, workersCount)

	var wg sync.WaitGroup
	dataSize := len(points)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				points[i] = l.t.Apply(points[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
