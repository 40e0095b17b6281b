// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reporter

import (
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "n/a"

var printer = message.NewPrinter(language.English)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"bytes":  formatBytes,
		"number": formatNumber,
		"pct":    formatPercent,
		"deref":  deref,
	}
}

// deref unwraps optional snapshot fields, mapping nil to "n/a".
func deref(v any) any {
	switch p := v.(type) {
	case *int:
		if p == nil {
			return notAvailable
		}
		return *p
	case *uint64:
		if p == nil {
			return notAvailable
		}
		return *p
	case *float64:
		if p == nil {
			return notAvailable
		}
		return *p
	case *float32:
		if p == nil {
			return notAvailable
		}
		return *p
	case *string:
		if p == nil {
			return notAvailable
		}
		return *p
	}
	return v
}

func formatBytes(v any) string {
	switch n := deref(v).(type) {
	case uint64:
		return humanize.IBytes(n)
	case int:
		if n < 0 {
			return notAvailable
		}
		return humanize.IBytes(uint64(n))
	case int64:
		if n < 0 {
			return notAvailable
		}
		return humanize.IBytes(uint64(n))
	case string:
		return n
	}
	return fmt.Sprint(v)
}

func formatNumber(v any) string {
	switch n := deref(v).(type) {
	case int, int32, int64, uint64:
		return printer.Sprintf("%d", n)
	case float64:
		return printer.Sprintf("%.1f", n)
	case float32:
		return printer.Sprintf("%.1f", n)
	case string:
		return n
	}
	return fmt.Sprint(v)
}

func formatPercent(v any) string {
	switch n := deref(v).(type) {
	case float64:
		return fmt.Sprintf("%.1f%%", n)
	case float32:
		return fmt.Sprintf("%.1f%%", n)
	case string:
		return n
	}
	return fmt.Sprint(v)
}
