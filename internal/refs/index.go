// Package refs builds a queryable index from the output of git ls-remote.
package refs

import (
	"regexp"
	"sort"
	"strings"
)

// Doc is a single remote ref.
type Doc struct {
	SHA  string `json:"sha"`
	Name string `json:"ref"`
	Kind Kind   `json:"type"`
}

// Index is the set of refs advertised by a remote, keyed several ways.
// An Index is never modified after Build returns it.
type Index struct {
	refs     map[string]Doc
	shas     map[string][]string
	versions map[string]Doc
	distTags map[string]Doc
}

var (
	refPrefix  = regexp.MustCompile(`^refs/[^/]+/`)
	tagVersion = regexp.MustCompile(`v?(\d+\.\d+\.\d+)$`)
)

// Build parses ls-remote output, one "<sha><whitespace><ref>" per line.
// Lines with fewer than two fields, or whose ref name is empty once the
// refs/<kind>/ prefix is stripped, are skipped.
func Build(listing string) *Index {
	idx := &Index{
		refs:     make(map[string]Doc),
		shas:     make(map[string][]string),
		versions: make(map[string]Doc),
		distTags: make(map[string]Doc),
	}

	for _, line := range strings.Split(listing, "\n") {
		sha, ref, ok := splitLine(line)
		if !ok {
			continue
		}
		name := refPrefix.ReplaceAllString(ref, "")
		if name == "" {
			continue
		}

		doc := Doc{SHA: sha, Name: name, Kind: Classify(line)}
		idx.refs[name] = doc
		idx.shas[sha] = append(idx.shas[sha], name)

		if doc.Kind == KindTag {
			if m := tagVersion.FindStringSubmatch(name); m != nil {
				idx.versions[m[1]] = doc
			}
		}
	}

	idx.deriveDistTags()
	return idx
}

// splitLine returns the first two whitespace-separated fields of line.
func splitLine(line string) (sha, ref string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// deriveDistTags points HEAD and latest at the version sharing HEAD's commit.
//
// The match compares version keys against HEAD's sha field, so it only
// succeeds when that field is itself a dotted triple. Real listings carry a
// 40 character sha there and derive no dist-tags.
func (idx *Index) deriveDistTags() {
	head, ok := idx.refs["HEAD"]
	if !ok {
		return
	}
	for _, v := range idx.Versions() {
		if v != head.SHA {
			continue
		}
		idx.distTags["HEAD"] = idx.versions[v]
		if _, ok := idx.distTags["latest"]; !ok {
			idx.distTags["latest"] = head
		}
	}
}

// Ref returns the ref with the given name.
func (idx *Index) Ref(name string) (Doc, bool) {
	doc, ok := idx.refs[name]
	return doc, ok
}

// NamesFor returns the names of the refs pointing at sha, in listing order.
func (idx *Index) NamesFor(sha string) []string {
	names := idx.shas[sha]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// BySHA returns the first listed ref pointing at sha.
func (idx *Index) BySHA(sha string) (Doc, bool) {
	names := idx.shas[sha]
	if len(names) == 0 {
		return Doc{}, false
	}
	doc, ok := idx.refs[names[0]]
	return doc, ok
}

// Refs returns every ref sorted by name.
func (idx *Index) Refs() []Doc {
	docs := make([]Doc, 0, len(idx.refs))
	for _, doc := range idx.refs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// Versions returns the semantic versions found in tag names, sorted as strings.
func (idx *Index) Versions() []string {
	return sortedKeys(idx.versions)
}

// VersionMap returns a copy of the version to ref mapping.
func (idx *Index) VersionMap() map[string]Doc {
	return copyMap(idx.versions)
}

// DistTags returns a copy of the derived dist-tags.
func (idx *Index) DistTags() map[string]Doc {
	return copyMap(idx.distTags)
}

// Len returns the number of distinct refs.
func (idx *Index) Len() int {
	return len(idx.refs)
}

func sortedKeys(m map[string]Doc) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyMap(m map[string]Doc) map[string]Doc {
	out := make(map[string]Doc, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
