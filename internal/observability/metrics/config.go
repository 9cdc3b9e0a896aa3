package metrics

// Config identifies the emitting service on every metric series.
type Config struct {
	ServiceName string
	Environment string
}
