package backend

import "storefront/internal/domain/service"

// The client is exposed to use cases through the narrow domain interfaces.

func AsCatalogAPI(c *Client) service.CatalogAPI { return c }

func AsAuthAPI(c *Client) service.AuthAPI { return c }

func AsOrderAPI(c *Client) service.OrderAPI { return c }

func AsAdminAPI(c *Client) service.AdminAPI { return c }
