// Command scanqueue lists the queue entries quaver would create for the
// given files and directories. With -append it also adds them to the saved
// queue without starting the UI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/llehouerou/quaver/internal/playlist"
	"github.com/llehouerou/quaver/internal/state"
)

func main() {
	appendQueue := flag.Bool("append", false, "append the entries to the saved queue")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: scanqueue [-append] path...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	tracks, err := playlist.CollectFromPaths(flag.Args())
	if err != nil {
		log.Fatalf("Failed to scan: %v", err)
	}
	for i, t := range tracks {
		fmt.Printf("%4d  %-40s  %-24s  %-24s  %s\n", i+1, t.Title, t.Artist, t.Album, t.AlbumID)
	}
	log.Printf("Found %d tracks", len(tracks))

	if !*appendQueue || len(tracks) == 0 {
		return
	}

	stateMgr, err := state.Open(state.DefaultDefaults(), zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer stateMgr.Close()

	q := playlist.NewQueue()
	saved, err := stateMgr.GetQueue()
	if err != nil {
		log.Fatalf("Failed to read queue: %v", err) //nolint:gocritic // nothing to flush yet
	}
	if saved != nil {
		saved.ApplyTo(q)
	}
	q.Add(tracks...)

	if err := stateMgr.SaveQueue(state.QueueStateFrom(q)); err != nil {
		log.Fatalf("Failed to save queue: %v", err) //nolint:gocritic // the queue write failed anyway
	}
	log.Printf("Queue now holds %d tracks", q.Len())
}
