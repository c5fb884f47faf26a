// Package catalog is the outbound adapter for the upstream product catalog
// API (DummyJSON by default). It builds upstream URLs, decodes the upstream
// payloads into domain product types and maps non-2xx responses to
// [*StatusError] values that unwrap to domain sentinels.
//
// All traffic goes through [httpclient.Client], so every call is circuit
// broken, rate limited, traced and counted.
package catalog
