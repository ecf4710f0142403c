// Package generate renders canonical unit records back into the source-module
// format consumed by the companion app's data layer.
//
// Each faction yields four TypeScript modules: troops, characters, high
// command and an index that re-exports the three. Rendering is byte-for-byte
// deterministic so an unchanged dataset publishes as an empty diff.
package generate
