// Package output writes rendered documents to their destination.
//
// SaveToFile is the local-filesystem path: it creates missing parent
// directories and overwrites any existing file. S3Sink uploads documents to
// an S3 bucket through the aws-sdk-go-v2 client. Both satisfy Sink.
//
//	html, err := utemplates.Render(page)
//	if err != nil {
//	    return err
//	}
//	return output.SaveToFile(html, "public/index.html")
package output
