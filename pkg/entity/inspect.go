package entity

import (
	"github.com/cockroachdb/errors"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/transaction"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// ErrNetworkMismatch is returned when a transaction names a network other
// than the one required by the policy.
var ErrNetworkMismatch = errors.New("network mismatch")

// Policy selects the checks Inspect applies on top of decoding.
type Policy struct {
	// StrictSize turns a declared size that disagrees with the content into
	// an error instead of a warning.
	StrictSize bool
	// Network, when set, is the only network transactions may carry.
	Network *model.NetworkType
	// AllowTrailing accepts input that continues past the record.
	AllowTrailing bool
}

// Report describes one decoded record.
type Report struct {
	Kind     Kind     `json:"kind"`
	Declared int      `json:"declaredSize"`
	Computed int      `json:"computedSize"`
	Trailing int      `json:"trailingBytes,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Entity   Entity   `json:"entity"`
}

// Inspect decodes a record of kind k from b and applies p.
func Inspect(k Kind, b []byte, p Policy) (*Report, error) {
	e, n, err := Decode(k, b)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Kind:     k,
		Declared: n,
		Computed: e.Size(),
		Trailing: len(b) - n,
		Entity:   e,
	}

	if report.Trailing > 0 && !p.AllowTrailing {
		return nil, wire.NewError(wire.ErrSizeMismatch, n, "%d bytes follow the %s", report.Trailing, k)
	}

	if err := CheckSize(e, n); err != nil {
		if p.StrictSize {
			return nil, err
		}
		report.Warnings = append(report.Warnings, err.Error())
	}

	if p.Network != nil {
		for _, network := range networks(e) {
			if network != *p.Network {
				return nil, errors.Wrapf(ErrNetworkMismatch, "%s carries %s, expected %s", k, network, *p.Network)
			}
		}
	}

	return report, nil
}

// networks lists the networks named by a transaction and the transactions
// embedded in it.
func networks(e Entity) []model.NetworkType {
	switch tx := e.(type) {
	case *transaction.Transaction:
		out := []model.NetworkType{tx.Network}
		switch body := tx.Body.(type) {
		case transaction.AggregateCompleteBody:
			out = append(out, embeddedNetworks(body.Transactions)...)
		case transaction.AggregateBondedBody:
			out = append(out, embeddedNetworks(body.Transactions)...)
		}
		return out
	case *transaction.EmbeddedTransaction:
		return []model.NetworkType{tx.Network}
	}
	return nil
}

func embeddedNetworks(txs []*transaction.EmbeddedTransaction) []model.NetworkType {
	out := make([]model.NetworkType, 0, len(txs))
	for _, tx := range txs {
		if tx != nil {
			out = append(out, tx.Network)
		}
	}
	return out
}
