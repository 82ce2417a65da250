// Package pdfmerge concatenates PDF files into a single document.
//
// The module is organized as a short pipeline of packages, each usable on its
// own:
//
//   - source: resolve input paths from explicit files, a manifest, or a glob pattern
//   - sorter: reorder paths by name, modification time, or size
//   - merger: append each input to an accumulating document and write it once
//   - report: status lines for each stage (colored console or recorder)
//   - pdferrors: structured error types shared by the stages
//
// The pdfmerge command wires these together behind a confirmation prompt.
//
// # Quick Start
//
// Merge every PDF in a directory, sorted by name:
//
//	res, err := source.Resolve(source.Config{Dir: "scans"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	spec, _ := sorter.ParseSpec("name")
//	paths, err := sorter.Sort(res.Paths, spec, report.Nop{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	m := merger.New(merger.DefaultConfig())
//	result, err := m.Merge(paths, "merged.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d files, %d pages\n", len(result.Appended), result.PageCount)
//
// Inputs that cannot be read are skipped and listed in the result; only a
// failure to write the output is returned as an error.
//
// # PDF Engine
//
// Parsing and page merging are delegated to github.com/pdfcpu/pdfcpu through
// the merger.Appender interface. Alternative engines or test doubles can be
// plugged in with merger.Config.NewAppender.
package pdfmerge
