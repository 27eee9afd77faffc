package namer

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/fnv"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"      //nolint:staticcheck // legacy digest names stay selectable
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // legacy digest names stay selectable
	"golang.org/x/crypto/sha3"
)

// digests maps algorithm names to hash constructors.
// Names follow the common lowercase spelling (md5, sha256, sha3-256, crc32b, ...).
var digests = map[string]func() (hash.Hash, error){
	"md4":         plain(md4.New),
	"md5":         plain(md5.New),
	"sha1":        plain(sha1.New),
	"sha224":      plain(sha256.New224),
	"sha256":      plain(sha256.New),
	"sha384":      plain(sha512.New384),
	"sha512":      plain(sha512.New),
	"sha512/224":  plain(sha512.New512_224),
	"sha512/256":  plain(sha512.New512_256),
	"sha3-224":    plain(func() hash.Hash { return sha3.New224() }),
	"sha3-256":    plain(func() hash.Hash { return sha3.New256() }),
	"sha3-384":    plain(func() hash.Hash { return sha3.New384() }),
	"sha3-512":    plain(func() hash.Hash { return sha3.New512() }),
	"ripemd160":   plain(ripemd160.New),
	"blake2b-256": func() (hash.Hash, error) { return blake2b.New256(nil) },
	"blake2b-384": func() (hash.Hash, error) { return blake2b.New384(nil) },
	"blake2b-512": func() (hash.Hash, error) { return blake2b.New512(nil) },
	"blake2s-256": func() (hash.Hash, error) { return blake2s.New256(nil) },
	"crc32b":      plain(func() hash.Hash { return crc32.NewIEEE() }),
	"adler32":     plain(func() hash.Hash { return adler32.New() }),
	"fnv132":      plain(func() hash.Hash { return fnv.New32() }),
	"fnv1a32":     plain(func() hash.Hash { return fnv.New32a() }),
	"fnv164":      plain(func() hash.Hash { return fnv.New64() }),
	"fnv1a64":     plain(func() hash.Hash { return fnv.New64a() }),
}

// plain adapts constructors that cannot fail.
func plain(newHash func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return newHash(), nil }
}

// Algorithms returns the supported digest algorithm names, sorted.
func Algorithms() []string {
	out := make([]string, 0, len(digests))
	for name := range digests {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// SupportsAlgorithm reports whether name is a supported digest algorithm.
func SupportsAlgorithm(name string) bool {
	_, ok := digests[normalizeAlgorithm(name)]
	return ok
}

func normalizeAlgorithm(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// digestHex hashes s with the named algorithm and returns the hex encoding.
func digestHex(algorithm, s string) (string, bool) {
	newHash, ok := digests[normalizeAlgorithm(algorithm)]
	if !ok {
		return "", false
	}
	h, err := newHash()
	if err != nil {
		return "", false
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil)), true
}
