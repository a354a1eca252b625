package env

import "os"

// Get reads key from the process environment. Unset or blank values fall
// back to the provided default.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
