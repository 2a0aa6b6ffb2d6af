// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule_test

import (
	"fmt"
	"time"

	"github.com/michael-gallo/simple-ical/rrule"
)

func ExampleParseRule() {
	r, err := rrule.ParseRule("FREQ=DAILY;INTERVAL=1;COUNT=10")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Freq)
	fmt.Println(r.Interval)
	fmt.Println(*r.Count)
	// Output: DAILY
	// 1
	// 10
}

func ExampleGenerate() {
	r, err := rrule.ParseRule("FREQ=DAILY;COUNT=3")
	if err != nil {
		panic(err)
	}
	anchor := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

	it := rrule.Generate(r, anchor)
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(t.Format("2006-01-02"))
	}
	// Output: 2025-01-01
	// 2025-01-02
	// 2025-01-03
}
