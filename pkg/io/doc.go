// Package io names the on-disk formats of a map and routes reads and writes
// to the matching codec.
//
// # Formats
//
// Three names are registered:
//
//   - sbgnml-0.2: SBGN-ML with the libsbgn 0.2 namespace
//   - sbgnml-0.3: SBGN-ML with the libsbgn 0.3 namespace, map ids and
//     language version URIs
//   - sbgnml: alias of the newest generation
//
// # Import
//
// [ImportFile] and [Import] sniff the generation of the document, so the
// format name only matters when a caller wants to insist on one:
//
//	res, err := io.ImportFile("glycolysis.sbgn", "", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Version, res.Map.Model.Len())
//
// # Export
//
// [ExportFile] and [Export] take the format name and override the version
// of the writer options with it:
//
//	stats, err := io.ExportFile(res.Map, "out.sbgn", "sbgnml-0.2", writer.DefaultOptions())
//
// Unknown names fail with an [errors.ErrCodeInvalidFormat] error that lists
// the valid ones.
package io
