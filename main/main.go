package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/zstring"
	"github.com/rawbytedev/zstring/pkg/arena"
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

	inputs := []string{"azerty", "hello", "naïve café", "日本語 🚀", "random"}
	slab := arena.NewSlab(64)
	for i := 0; i < 10000; i++ {
		for _, s := range inputs {
			z, err := zstring.NewZString(s, slab)
			if err != nil {
				log.Fatal(err)
			}
			cd := z.Chars()
			for {
				if _, ok := cd.Next(); !ok {
					break
				}
			}
			z.Free()
		}
	}
	if slab.Live() != 0 {
		log.Fatalf("leaked %d slab blocks", slab.Live())
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
