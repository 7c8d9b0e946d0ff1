package models

import "encoding/json"

// Credentials is the JSON body sent to the controller's login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ContentFilter is one content-filtering rule as returned by the controller.
//
// The controller expects updates to send the whole object back, so every
// field it returned — including ones this tool knows nothing about — is
// retained in raw form and re-emitted on marshal. Only ID, Name and
// BlockList are surfaced as typed fields.
type ContentFilter struct {
	ID        string
	Name      string
	BlockList []string

	raw map[string]json.RawMessage
}

func (f *ContentFilter) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["_id"]; ok {
		if err := json.Unmarshal(v, &f.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &f.Name); err != nil {
			return err
		}
	}
	if v, ok := raw["block_list"]; ok {
		if err := json.Unmarshal(v, &f.BlockList); err != nil {
			return err
		}
	}

	f.raw = raw
	return nil
}

func (f ContentFilter) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(f.raw)+3)
	for k, v := range f.raw {
		out[k] = v
	}

	var err error
	if out["_id"], err = json.Marshal(f.ID); err != nil {
		return nil, err
	}
	if out["name"], err = json.Marshal(f.Name); err != nil {
		return nil, err
	}
	blockList := f.BlockList
	if blockList == nil {
		blockList = []string{}
	}
	if out["block_list"], err = json.Marshal(blockList); err != nil {
		return nil, err
	}

	return json.Marshal(out)
}
