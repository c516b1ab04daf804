package api

import "github.com/healteex/trackctl/internal/apperr"

func errNilRequest(op string) error {
	return apperr.Internalf("%s request is required", op)
}
