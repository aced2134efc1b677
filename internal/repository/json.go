package repository

import "encoding/json"

// String-list fields (capabilities, tools, requirements, ...) live in JSON
// columns.  These helpers keep the marshal/scan noise out of the repos.

func packList(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return b
}

func unpackList(raw []byte) []string {
	var out []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
