package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/propkit/prop"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	var cell *prop.Cell[int]
	cell = prop.New(0, prop.Synchronized[int](),
		prop.WithGetter(func() int { return cell.Get() }),
		prop.WithSetter(func(v int) { cell.Set(min(v, 1_000_000)) }),
	)
	for i := 0; i < 10000; i++ {
		cell.Set(i)
		_ = cell.Get()
		prop.Add(cell, 1)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
