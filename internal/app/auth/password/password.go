package password

import (
	"github.com/alexedwards/argon2id"

	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
)

var params = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash produces a salted argon2id hash; the salt is embedded in the
// encoded output, nothing is stored separately.
func Hash(plain string) (string, error) {
	h, err := argon2id.CreateHash(plain, params)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return h, nil
}

// Verify reports whether plain matches the encoded hash. A malformed hash
// is a storage corruption, surfaced as an internal error.
func Verify(plain, encoded string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plain, encoded)
	if err != nil {
		return false, customErrors.WrapInternal(err, "verify password")
	}
	return ok, nil
}
