package sui

import (
	"context"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletview"
)

type (
	// objectAttributeResponse is one trait inside an object's content fields.
	objectAttributeResponse struct {
		TraitType string `json:"trait_type"`
		Value     string `json:"value"`
	}

	// objectFieldsResponse is the subset of an object's content fields the
	// view layer consumes. On-chain objects carry arbitrary mappings; extra
	// fields are ignored during decoding.
	objectFieldsResponse struct {
		Name        string                    `json:"name"`
		Description string                    `json:"description"`
		URL         string                    `json:"url"`
		Attributes  []objectAttributeResponse `json:"attributes"`
	}

	// objectContentResponse is an object's content block.
	objectContentResponse struct {
		DataType string                `json:"dataType"`
		Fields   *objectFieldsResponse `json:"fields"`
	}

	// objectDisplayDataResponse is the data inside an object's display block.
	objectDisplayDataResponse struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Creator     string `json:"creator"`
	}

	// objectDisplayResponse is an object's display block.
	objectDisplayResponse struct {
		Data *objectDisplayDataResponse `json:"data"`
	}

	// objectDataResponse is the payload of one owned object.
	objectDataResponse struct {
		ObjectID string                 `json:"objectId"`
		Type     string                 `json:"type"`
		Display  *objectDisplayResponse `json:"display"`
		Content  *objectContentResponse `json:"content"`
	}

	// ownedObjectResponse wraps one owned object entry.
	ownedObjectResponse struct {
		Data objectDataResponse `json:"data"`
	}

	// objectPageResponse is one page of owned objects as returned by
	// suix_getOwnedObjects.
	objectPageResponse struct {
		Data        []ownedObjectResponse `json:"data"`
		NextCursor  *string               `json:"nextCursor"`
		HasNextPage bool                  `json:"hasNextPage"`
	}
)

// toViewObject converts a raw owned object into the walletview domain type.
func (o ownedObjectResponse) toViewObject() walletview.OwnedObject {
	object := walletview.OwnedObject{
		ObjectID: o.Data.ObjectID,
		Type:     o.Data.Type,
	}

	if display := o.Data.Display; display != nil && display.Data != nil {
		object.Display = &walletview.ObjectDisplay{
			Name:        display.Data.Name,
			Description: display.Data.Description,
			ImageURL:    display.Data.ImageURL,
			Creator:     display.Data.Creator,
		}
	}

	if content := o.Data.Content; content != nil && content.Fields != nil {
		fields := &walletview.ObjectFields{
			Name:        content.Fields.Name,
			Description: content.Fields.Description,
			URL:         content.Fields.URL,
		}

		for _, attr := range content.Fields.Attributes {
			fields.Attributes = append(fields.Attributes, walletview.ObjectAttribute{
				TraitType: attr.TraitType,
				Value:     attr.Value,
			})
		}

		object.Content = fields
	}

	return object
}

// toViewPage converts a raw object page into the walletview domain type.
func (p objectPageResponse) toViewPage() walletview.ObjectPage {
	objects := make([]walletview.OwnedObject, len(p.Data))
	for i, object := range p.Data {
		objects[i] = object.toViewObject()
	}

	return walletview.ObjectPage{
		Data:        objects,
		NextCursor:  p.NextCursor,
		HasNextPage: p.HasNextPage,
	}
}

// OwnedObjects returns one page of objects held by the address, falling back
// to the substitute objects when the node cannot provide them.
func (c *client) OwnedObjects(ctx context.Context, address types.Address, cursor *string, limit int) (walletview.ObjectPage, error) {
	if limit <= 0 {
		limit = defaultObjectPageLimit
	}

	if c.offline {
		logSubstitute(ctx, methodGetOwnedObjects, nil)
		return substituteObjectPage(), nil
	}

	query := map[string]any{
		"cursor": cursor,
		"limit":  limit,
		"options": map[string]any{
			"showType":    true,
			"showContent": true,
			"showDisplay": true,
		},
	}

	var res objectPageResponse
	if err := c.fetch(ctx, &res, methodGetOwnedObjects, address.String(), query); err != nil {
		logSubstitute(ctx, methodGetOwnedObjects, err)
		return substituteObjectPage(), nil
	}

	return res.toViewPage(), nil
}
