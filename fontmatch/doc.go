// Package fontmatch opens faces from font patterns such as
// "DejaVu Sans Mono:size=10;1".
//
// The part after the last ';' is the baseline offset in pixels. Families
// are looked up in the system font directories with go-findfont; a
// "file=" property names the font file directly.
package fontmatch
