// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package invocation

import (
	"encoding/base64"
	"encoding/json"
)

type argJSON struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

type functionJSON struct {
	Function string    `json:"function"`
	Args     []argJSON `json:"args"`
}

// MarshalJSON - name and typed argument values
func (f Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(functionJSON{
		Function: f.Name,
		Args:     argsToJSON(f.Args),
	})
}

func argsToJSON(args []Arg) []argJSON {
	result := make([]argJSON, 0, len(args))
	for _, arg := range args {
		switch a := arg.(type) {
		case IntegerArg:
			result = append(result, argJSON{Type: "integer", Value: int64(a)})
		case BooleanArg:
			result = append(result, argJSON{Type: "boolean", Value: bool(a)})
		case BinaryArg:
			result = append(result, argJSON{Type: "binary", Value: "base64:" + base64.StdEncoding.EncodeToString(a)})
		case StringArg:
			result = append(result, argJSON{Type: "string", Value: string(a)})
		case ListArg:
			result = append(result, argJSON{Type: "list", Value: argsToJSON(a)})
		}
	}
	return result
}
