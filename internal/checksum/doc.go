// Package checksum hashes file contents for Entry.Checksum.
//
// CalculateNormalized is what the builder stores: line endings become LF,
// trailing spaces and tabs are stripped from each line and trailing blank
// lines are dropped, so a text file checked out on Windows and on Unix gets
// the same digest. CalculateRaw hashes the bytes as they are.
//
//	sum := checksum.New().CalculateNormalized(content)
//
// SHA256 has no state and is safe for concurrent use.
package checksum
