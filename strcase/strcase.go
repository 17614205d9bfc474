// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/ettle/strcase
// Copyright (c) 2020 Liyan David Chang under the MIT License

// Package strcase provides functions for converting CamelCase identifiers
// into delimited word cases such as kebab-case and snake_case. It is based on
// https://github.com/ettle/strcase, which is Copyright (c) 2020 Liyan David
// Chang under the MIT License. Runs of capitals are kept together as one
// word, so VRMLShape becomes vrml-shape.
package strcase

// ToSnake returns words in snake_case (lower case words with underscores).
func ToSnake(s string) string {
	return ToWordCase(s, LowerCase, '_')
}

// ToSNAKE returns words in SNAKE_CASE (upper case words with underscores).
// Also known as SCREAMING_SNAKE_CASE or UPPER_CASE.
func ToSNAKE(s string) string {
	return ToWordCase(s, UpperCase, '_')
}

// ToKebab returns words in kebab-case (lower case words with dashes).
// Also known as dash-case.
func ToKebab(s string) string {
	return ToWordCase(s, LowerCase, '-')
}
