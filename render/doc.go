// Package render is the persistence collaborator of the artfield core:
// it converts colorized images into standard library image values,
// encodes them as PNG, and composes gallery contact sheets.
//
// The core itself never performs I/O; render receives finished
// (Image, Metadata) pairs and owns all encoding concerns from there.
package render
