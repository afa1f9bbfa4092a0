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

package crawler

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// fractionSlash is what NFKC turns the '/' of vulgar fractions into.
const fractionSlash = "⁄"

// normalizeText folds compatibility characters so the parser sees ASCII
// forms: "½" becomes "1/2" and non-breaking spaces become spaces. A vulgar
// fraction directly after a digit is split off first, so "1½" becomes
// "1 1/2" rather than "11/2".
func normalizeText(s string) string {
	return strings.ReplaceAll(norm.NFKC.String(spaceFractions(s)), fractionSlash, "/")
}

func spaceFractions(s string) string {
	var sb strings.Builder
	prev := rune(0)
	for _, r := range s {
		if isVulgarFraction(r) && unicode.IsDigit(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}

func isVulgarFraction(r rune) bool {
	return r == '¼' || r == '½' || r == '¾' || (r >= '\u2150' && r <= '\u215F') || r == '\u2189'
}

// blockText renders the text of n, starting a new line at every <br> and
// at the end of block elements so summary lines stay separate.
func blockText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			sb.WriteString(node.Data)
			return
		case html.ElementNode:
			switch node.DataAtom {
			case atom.Br:
				sb.WriteByte('\n')
				return
			case atom.Script, atom.Style:
				return
			}
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if node.Type == html.ElementNode && isBlock(node.DataAtom) {
			sb.WriteByte('\n')
		}
	}
	walk(n)
	return sb.String()
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Div, atom.P, atom.Li, atom.Tr, atom.Table:
		return true
	}
	return false
}
