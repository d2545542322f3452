/*
Package clientsdk is a Go client for the clients service REST API.

# Usage

	client := clientsdk.NewSDKClient("http://localhost:8080")

	// First page of clients ordered by name
	page, err := client.ListClients(ctx, clientsdk.PageParams{})

	// Clients earning more than 4000, richest first
	page, err = client.FindByIncomeGreaterThan(ctx, 4000, clientsdk.PageParams{
		LinesPerPage: 5,
		Direction:    "DESC",
		OrderBy:      "income",
	})

	// Partial update, fields left nil are not changed
	name := "Jose Saramago"
	updated, err := client.UpdateClient(ctx, 7, clientsdk.UpdateClientRequest{Name: &name})

# Errors

Non-2xx responses are returned as *APIError carrying the decoded
StandardError body:

	_, err := client.GetClient(ctx, 33)
	if clientsdk.IsNotFound(err) {
		// 404, err.(*clientsdk.APIError).Body.Path == "/clients/id/33"
	}

Validation failures (422) list the rejected fields in Body.Errors.
*/
package clientsdk
