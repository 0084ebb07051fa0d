package yandextranslate

import "context"

// Languages returns the list of languages the API can translate between.
// folderID scopes the request for billing; pass "" to rely on the
// credential's default scope.
func (c *Client) Languages(ctx context.Context, folderID string) ([]Language, error) {
	var resp languagesResponse
	if err := c.post(ctx, "/languages", languagesRequest{FolderID: folderID}, &resp); err != nil {
		return nil, err
	}
	return resp.Languages, nil
}
