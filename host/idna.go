package host

import "golang.org/x/net/idna"

// domainProfile is the single external collaborator this module delegates
// domain validation and A-label encoding to (spec.md §1: IDNA is a
// black-box validate_domain(s) -> Domain | error function, not reimplemented
// here). Transitional(false) and CheckHyphens(false) match the WHATWG
// "domain to ASCII" algorithm's leniency — it is not the strict
// registration profile IDNA2008 defines for registrars.
var domainProfile = idna.New(
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
	idna.ValidateLabels(true),
)

// domainToASCII hands a percent-decoded domain string to the IDNA
// collaborator and returns its ASCII (A-label) form, or an error if the
// collaborator rejects it.
func domainToASCII(s string) (string, error) {
	return domainProfile.ToASCII(s)
}
