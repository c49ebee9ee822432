package main

import (
	"runtime"
	"sync"
)

// 전역 워커 풀: 채널로 만든 세마포어. 슬롯이 없으면 호출자가 순차 처리로 넘어간다.
var (
	workerPool     chan struct{}
	workerPoolOnce sync.Once
)

// initWorkerPool 처음 한 번만 만든다. size <= 0 이면 CPU 수.
func initWorkerPool(size int) {
	workerPoolOnce.Do(func() {
		if size <= 0 {
			size = runtime.NumCPU()
		}
		workerPool = make(chan struct{}, size)
	})
}

// tryAcquire 슬롯을 얻으면 반환 함수를, 못 얻으면 nil
func tryAcquire() func() {
	select {
	case workerPool <- struct{}{}:
		return func() { <-workerPool }
	default:
		return nil
	}
}

// forkJoin 두 작업을 가능하면 각각 고루틴으로 돌리고 둘 다 끝날 때까지 기다린다
func forkJoin(parallelLeft, seqLeft, parallelRight, seqRight func()) {
	var wg sync.WaitGroup
	wg.Add(2)
	run := func(parallel, seq func()) {
		defer wg.Done()
		if release := tryAcquire(); release != nil {
			defer release()
			parallel()
			return
		}
		seq()
	}
	go run(parallelLeft, seqLeft)
	go run(parallelRight, seqRight)
	wg.Wait()
}
