//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordernumber_test
package ordernumber

import "net/http"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
