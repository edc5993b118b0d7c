package application

const (
	defaultTake = 20
	maxTake     = 1000
)

// normalizePaging skip 下限 0，take 缺省 20、上限 1000
func normalizePaging(skip, take int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = defaultTake
	}
	if take > maxTake {
		take = maxTake
	}
	return skip, take
}
