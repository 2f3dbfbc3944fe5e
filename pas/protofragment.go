package pas

import (
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/sitesplit"
)

// protoFragment is a run of mutation sites that must land on the same
// PAS fragment because the gap between them cannot host a valid overlap
// at the currently swept threshold temperature: either it is too short,
// or its own melting temperature falls below the threshold.
type protoFragment struct {
	sites []*sitesplit.MutationSite
}

// Start is the first site's codon start.
func (p protoFragment) Start() int { return p.sites[0].Start() }

// End is the last site's codon end.
func (p protoFragment) End() int { return p.sites[len(p.sites)-1].End() }

// buildProtoFragments groups sites (already sorted by position) into
// proto-fragments: adjacent sites merge into one group whenever the
// window between them is shorter than cfg.MinOverlapLength, or its
// duplex Tm comes in under minOverlapTemp, since neither leaves room for
// a fragment boundary between the two sites.
func buildProtoFragments(gene string, sites []*sitesplit.MutationSite, cfg Config, minOverlapTemp float64, calc engine.TmCalculator) ([]protoFragment, error) {
	if len(sites) == 0 {
		return nil, nil
	}

	protos := []protoFragment{{sites: []*sitesplit.MutationSite{sites[0]}}}
	for _, s := range sites[1:] {
		last := &protos[len(protos)-1]
		gapStart, gapEnd := last.End(), s.Start()

		merge := gapEnd-gapStart < cfg.MinOverlapLength
		if !merge {
			tm, err := calc.DuplexTm(gene[gapStart:gapEnd])
			if err != nil {
				return nil, engine.Wrap(engine.Internal, err)
			}
			merge = tm < minOverlapTemp
		}

		if merge {
			last.sites = append(last.sites, s)
		} else {
			protos = append(protos, protoFragment{sites: []*sitesplit.MutationSite{s}})
		}
	}
	return protos, nil
}
