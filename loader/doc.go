// Package loader turns files into chunkable sources.
//
// It detects the source format from the filename extension, normalizes the
// text (CRLF line endings to LF, Unicode NFC), and collects source-level
// metadata. HTML sources additionally contribute their title and meta tags
// as metadata; the text itself stays raw HTML source, since the HTML
// separator profile splits on tags.
//
//	src, err := loader.Load("notes.md")
//	if err != nil {
//	    // handle error
//	}
//	s, _ := splitter.NewForFormat(src.Format, splitter.DefaultConfig())
//	chunks, _ := s.SplitText(src.Text)
package loader
