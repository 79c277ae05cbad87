package models

// AssetsRequest is the body of a bulk create request.
type AssetsRequest struct {
	Assets []Asset `json:"assets"`
}

// AssetsResponse is the body returned when listing assets.
type AssetsResponse struct {
	Assets []Asset `json:"assets"`
}

// AssetReport holds every validation message produced for one record of a
// batch. Errors is never nil so that it always encodes as a JSON array.
type AssetReport struct {
	Name   string   `json:"asset_name"`
	Errors []string `json:"errors"`
}

// BatchReport is returned with HTTP 400 when a bulk create is rejected.
// Reports are in the same order as the records of the request.
type BatchReport struct {
	Assets []AssetReport `json:"assets"`
}

// HasErrors reports whether at least one record was rejected.
func (b BatchReport) HasErrors() bool {
	for _, r := range b.Assets {
		if !r.IsValid() {
			return true
		}
	}
	return false
}

// IsValid reports whether the record passed validation, i.e. it only carries
// the informational message.
func (r AssetReport) IsValid() bool {
	return len(r.Errors) == 1 && r.Errors[0] == MsgAssetIsValid
}

// MsgAssetIsValid is attached to records that passed validation in a batch
// that was rejected because of other records.
const MsgAssetIsValid = "Asset is valid and does not yet exist in the asset store"
