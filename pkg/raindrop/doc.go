// Package raindrop is a client for the Raindrop.io bookmarking REST API.
//
// Beyond thin typed wrappers over the CRUD endpoints, the package implements
// the permanent-copy retrieval protocol: Raindrop.io archives bookmarked
// pages and files server-side and hands them out through time-limited,
// pre-signed storage URLs reached via an HTTP 307 redirect.
//
// A full copy resolution involves up to three strictly ordered round-trips:
//
//  1. Metadata fetch (GET /raindrop/{id}) to learn the resource kind and the
//     embedded cache descriptor.
//  2. Redirect resolution against the file or cache sub-endpoint with
//     automatic redirect-following disabled, extracting the signed URL from
//     the Location header. The bearer credential must never be sent to the
//     signed URL, which is why redirects are not followed automatically.
//  3. An unauthenticated fetch of the signed URL itself.
//
// Copies are created asynchronously by the service. Creation requests report
// a readiness status (creating, ready, retry, failed, invalid-*) that callers
// poll by re-invoking the operation; the client never blocks waiting for the
// service.
//
// Usage:
//
//	cfg := raindrop.DefaultConfig()
//	cfg.Token = os.Getenv("RAINDROP_TOKEN")
//	client, err := raindrop.New(cfg)
//	if err != nil {
//		return err
//	}
//	link, err := client.GetCopyLink(ctx, 1234)
package raindrop
