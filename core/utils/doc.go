// Package utils provides cell-value coercion helpers shared by the CSV
// decoder and the field comparator. All helpers are total: malformed input
// coerces to a zero value instead of failing.
package utils
