package validation

import "regexp"

// Identity field patterns. NISN is the 10-digit national student number,
// NIK the 16-digit national identity number; NIS length varies by school.
var (
	NISNPattern = `^\d{10}$`
	NISPattern  = `^\d{4,12}$`
	NIKPattern  = `^\d{16}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	NISN *regexp.Regexp
	NIS  *regexp.Regexp
	NIK  *regexp.Regexp
}{
	NISN: regexp.MustCompile(NISNPattern),
	NIS:  regexp.MustCompile(NISPattern),
	NIK:  regexp.MustCompile(NIKPattern),
}

// ValidIdentity reports whether all three registration numbers match their
// expected shapes.
func ValidIdentity(nisn, nis, nik string) bool {
	return CompiledPatterns.NISN.MatchString(nisn) &&
		CompiledPatterns.NIS.MatchString(nis) &&
		CompiledPatterns.NIK.MatchString(nik)
}
