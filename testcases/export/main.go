// Command export writes the test case definitions to JSON, for checking
// other implementations against the same data.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/grid/testcases"
)

func main() {
	var out struct {
		Vents   []jsonVentCase   `json:"vents"`
		Heights []jsonHeightCase `json:"heights"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Vents)) {
		for _, tc := range testcases.Vents[category] {
			out.Vents = append(out.Vents, jsonVentCase{
				Name:      category + "_" + tc.Name,
				Segments:  lines(tc.Input),
				Threshold: tc.Threshold,
				Straight:  tc.Straight,
				All:       tc.All,
			})
		}
	}
	for _, tc := range testcases.Heights {
		low := make([][]int, len(tc.Low))
		for i, p := range tc.Low {
			low[i] = []int{p[0], p[1]}
		}
		out.Heights = append(out.Heights, jsonHeightCase{
			Name: "height_" + tc.Name,
			Rows: lines(tc.Input),
			Low:  low,
		})
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonVentCase struct {
	Name      string   `json:"name"`
	Segments  []string `json:"segments"`
	Threshold int      `json:"threshold"`
	Straight  int      `json:"straight"`
	All       int      `json:"all"`
}

type jsonHeightCase struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
	Low  [][]int  `json:"low"`
}

// lines splits multi-line test input into non-empty lines.
func lines(s string) []string {
	return slices.DeleteFunc(strings.Split(s, "\n"), func(l string) bool {
		return strings.TrimSpace(l) == ""
	})
}
