/*
Package rpcclient provides a client for the gRPC API of a Miden node.

The client accepts domain values from pkg/types (words, account identifiers,
note identifiers and tags), converts them to their wire form, performs one
remote call per method and returns the node's response. It implements no
retry, caching or batching; failed calls are returned to the caller wrapped in
the package's error sentinels.

	client, err := rpcclient.New(ctx, "https://rpc.testnet.miden.io:443", rpcclient.Options{})
	if err != nil {
		// handle error
	}
	defer client.Close()

	commitment, err := client.GetAccountCommitment(ctx, accountID)
*/
package rpcclient
