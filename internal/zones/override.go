package zones

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ApplyOverrides replaces zone membership lists from a YAML file mapping
// zone name to a list of wanted names. Zones absent from the file keep
// their embedded defaults; a zone name not in zs is an error.
func ApplyOverrides(zs []Zone, path string) ([]Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "zones: read overrides %s", path)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "zones: parse overrides %s", path)
	}

	byName := make(map[string]int, len(zs))
	for i, z := range zs {
		byName[z.Name] = i
	}

	out := make([]Zone, len(zs))
	copy(out, zs)
	for name, wanted := range raw {
		i, ok := byName[name]
		if !ok {
			return nil, eris.Errorf("zones: unknown zone %q in %s", name, path)
		}
		out[i].Wanted = wanted
	}
	return out, nil
}
