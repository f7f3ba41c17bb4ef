// Package minio serves rule documents from MinIO or any other S3-compatible
// service through the official minio-go client.
//
// Dial builds the client from an endpoint and static credentials; NewStore
// wraps a client you already hold:
//
//	store, err := minioblob.Dial("localhost:9000", key, secret, false, "rules", "skyrim/")
//	if err != nil {
//	    return err
//	}
//	report, err := rules.Load(ctx, store, "", builder)
//
// Object names passed to Open and returned by List are relative to the root
// prefix. Put and Delete exist so tests and tooling can seed a bucket; the
// loader itself only reads.
package minio
