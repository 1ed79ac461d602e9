package walletview

import "strings"

// coinTypeMarker identifies coin objects by their type tag. Anything whose
// type does not contain this marker is treated as a collectible. A custom
// coin implementation that skips the canonical marker would be misclassified;
// this matches the tracked chain's convention.
const coinTypeMarker = "::coin::Coin"

// defaultCollectibleName is shown when neither display nor content provides
// a name.
const defaultCollectibleName = "Unnamed NFT"

// CollectibleView is the display-ready form of one non-coin owned object.
// ImageURL may be empty; the render layer substitutes a placeholder.
type CollectibleView struct {
	ObjectID    string            `json:"objectId"`
	Name        string            `json:"name"`
	Collection  string            `json:"collection"`
	ImageURL    string            `json:"imageUrl"`
	Description string            `json:"description"`
	Attributes  []ObjectAttribute `json:"attributes"`
}

// normalizeCollectibles converts raw owned objects into display-ready
// collectible views, dropping coin objects.
//
// For name, image URL, and description, content fields take precedence over
// the display block. The collection comes from the display creator, falling
// back to the second "::" segment of the type tag. Attributes come only from
// the content fields; an object without them gets an empty list.
func normalizeCollectibles(objects []OwnedObject) []CollectibleView {
	collectibles := make([]CollectibleView, 0, len(objects))

	for _, object := range objects {
		if strings.Contains(object.Type, coinTypeMarker) {
			continue
		}

		view := CollectibleView{
			ObjectID:   object.ObjectID,
			Name:       defaultCollectibleName,
			Attributes: make([]ObjectAttribute, 0),
		}

		if display := object.Display; display != nil {
			if display.Name != "" {
				view.Name = display.Name
			}
			view.Collection = display.Creator
			view.ImageURL = display.ImageURL
			view.Description = display.Description
		}

		if content := object.Content; content != nil {
			if content.Name != "" {
				view.Name = content.Name
			}
			if content.URL != "" {
				view.ImageURL = content.URL
			}
			if content.Description != "" {
				view.Description = content.Description
			}
			if len(content.Attributes) > 0 {
				view.Attributes = content.Attributes
			}
		}

		if view.Collection == "" {
			view.Collection = collectionFromType(object.Type)
		}

		collectibles = append(collectibles, view)
	}

	return collectibles
}

// collectionFromType derives a collection name from a fully-qualified type
// tag by taking its second "::" segment, e.g. "0xabc::capy::Capy" -> "capy".
// Type tags with fewer segments yield an empty collection.
func collectionFromType(typeTag string) string {
	parts := strings.Split(typeTag, "::")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
