package main

import (
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "simulation" {
		seed := time.Now().UnixNano()
		if len(os.Args) > 2 {
			s, err := strconv.ParseInt(os.Args[2], 10, 64)
			if err != nil {
				pterm.Error.Printfln("invalid seed %q: %v", os.Args[2], err)
				os.Exit(1)
			}
			seed = s
		}
		if err := runSimulation(seed); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		return
	}

	pterm.Info.Println("usage: shuftle simulation [seed]")
}
