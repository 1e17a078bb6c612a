package main

/*
Example script for the chaintable Go SDK.

Run this after the server has started (default address: http://localhost:8080).
It will:
  1. Perform a health-check.
  2. Insert three values under the same key from both ends.
  3. Read them back by position.
  4. Remove one and print the table statistics.
  5. Reset the table.

Usage:
$ go run ./client-sdk/Go/example
*/

import (
	"fmt"

	"chaintable/client-sdk/Go/client"
)

func main() {
	c := client.NewClient("http://localhost:8080")

	// 1. Health check
	ok, err := c.HealthCheck()
	if err != nil {
		panic(err)
	}
	fmt.Println("Health check:", ok)

	// 2. Duplicate keys
	for i, v := range []string{"middle", "head"} {
		if err := c.Insert("color", v, 0, false); err != nil {
			panic(err)
		}
		fmt.Println("Inserted at head:", i, v)
	}
	if err := c.Insert("color", "tail", 0, true); err != nil {
		panic(err)
	}

	// 3. Positional reads
	for pos := uint(0); pos < 3; pos++ {
		v, err := c.Get("color", pos, false)
		if err != nil {
			panic(err)
		}
		fmt.Printf("color[%d] = %s\n", pos, v)
	}

	// 4. Remove the tail
	if err := c.Remove("color", 0, true); err != nil {
		panic(err)
	}
	stats, err := c.Stats()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Stats: %+v\n", *stats)

	// 5. Clean up
	if err := c.Reset(); err != nil {
		panic(err)
	}
	fmt.Println("Table reset")
}
