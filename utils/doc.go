// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample conversion helpers.
package utils
